// Package fakebooker is an in-process stand-in for the remote booking
// service. The regression suite targets it when no live base URL is
// configured, and the unit tests use it as a real HTTP counterpart.
package fakebooker

import (
	"net/http"
	"strconv"
	"time"

	"bitbucket.org/crgw/booker-regression/internal/config"
	"bitbucket.org/crgw/booker-regression/internal/contract"
	"bitbucket.org/crgw/booker-regression/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
)

const tokenLifetime = 30 * time.Minute

// Signing key of the fake auth endpoint. Tokens never leave the test run,
// so a fixed key is fine.
const signingKey = "fakebooker-signing-key"

type handlers struct {
	store  *store
	secret []byte
}

func SetupRouter(log *zerolog.Logger) *gin.Engine {
	startTime := time.Now()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery)

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, string(contract.Document))
	})

	h := &handlers{
		store:  newStore(),
		secret: []byte(signingKey),
	}

	router.GET("/ping", h.Ping)
	router.POST("/auth", h.CreateToken)

	router.GET("/booking", h.ListBookings)
	router.POST("/booking", h.CreateBooking)
	router.GET("/booking/:id", h.GetBooking)

	authorized := router.Group("/booking", h.RequireToken)
	authorized.PUT("/:id", h.UpdateBooking)
	authorized.PATCH("/:id", h.PartialUpdateBooking)
	authorized.DELETE("/:id", h.DeleteBooking)

	return router
}

func (h *handlers) Ping(c *gin.Context) {
	c.String(http.StatusCreated, "Created")
}

func (h *handlers) CreateToken(c *gin.Context) {
	var request schema.AuthRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	// Matches the real service: wrong credentials still answer 200, with a
	// reason instead of a token.
	if request.Username != config.Username() || request.Password != config.Password() {
		c.JSON(http.StatusOK, gin.H{"reason": "Bad credentials"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   request.Username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
	})

	signed, err := token.SignedString(h.secret)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, schema.AuthResponse{Token: signed})
}

// RequireToken guards the write endpoints behind the cookie credential.
func (h *handlers) RequireToken(c *gin.Context) {
	cookie, err := c.Cookie("token")
	if err != nil {
		c.String(http.StatusForbidden, "Forbidden")
		c.Abort()
		return
	}

	parsed, err := jwt.Parse(cookie, func(token *jwt.Token) (any, error) {
		return h.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !parsed.Valid {
		c.String(http.StatusForbidden, "Forbidden")
		c.Abort()
	}
}

func (h *handlers) ListBookings(c *gin.Context) {
	filters := schema.BookingFilters{
		Firstname: c.Query("firstname"),
		Lastname:  c.Query("lastname"),
		Checkin:   c.Query("checkin"),
		Checkout:  c.Query("checkout"),
	}

	c.JSON(http.StatusOK, h.store.List(filters))
}

func (h *handlers) CreateBooking(c *gin.Context) {
	var booking schema.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	id := h.store.Create(booking)

	c.JSON(http.StatusOK, schema.BookingRecord{
		Bookingid: id,
		Booking:   booking,
	})
}

func (h *handlers) GetBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	booking, ok := h.store.Get(id)
	if !ok {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *handlers) UpdateBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	var booking schema.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	if !h.store.Replace(id, booking) {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *handlers) PartialUpdateBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	var patch schema.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	booking, ok := h.store.Patch(id, patch)
	if !ok {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *handlers) DeleteBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	if !h.store.Delete(id) {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	c.String(http.StatusCreated, "Created")
}
