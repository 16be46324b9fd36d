// Command execshim is the wrapper-substitution binding for the interception
// trampoline: installed in place of (or in front of) a utility, it routes
// the launch through the trampoline so the redirect decision applies.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("execshim failed")
		os.Exit(1)
	}
}
