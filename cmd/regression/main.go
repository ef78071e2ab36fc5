// Launcher for the regression suite. Runs every scenario under
// internal/regression and exits with the test runner's exit code.
package main

import (
	"os"
	"os/exec"
	"strings"

	"bitbucket.org/crgw/service-helpers/logger"
	"github.com/joho/godotenv"
)

const suitePackage = "./internal/regression/"

func main() {
	_ = godotenv.Load(".env")
	log := logger.New(os.Getenv("LOG_LEVEL"))

	args := []string{"test", suitePackage, "-count=1", "-v"}
	args = append(args, os.Args[1:]...)

	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	log.Info().
		Str("label", "launcher").
		Msg("Running: go " + strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			os.Exit(exitError.ExitCode())
		}

		log.Error().
			Err(err).
			Msg("Could not run the suite")
		os.Exit(1)
	}
}
