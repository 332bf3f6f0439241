// SPDX-License-Identifier: MIT

// Command linsolvemod solves the congruence systems listed in a TOML
// problem file and prints each solution, its null basis and the checks
// mat·solution and mat·null under the moduli.
//
//	linsolvemod -config problems.toml [-log-level debug] [-trace] [-json-log]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/linsolvemod/problem"
)

var (
	configFile = flag.String("config", "", "problem file (TOML)")
	logLevel   = flag.String("log-level", "", "log level; overrides the file's loglevel")
	trace      = flag.Bool("trace", false, "dump lattices and HNF pivots at debug level")
	jsonLog    = flag.Bool("json-log", false, "log as JSON")
)

func main() {
	flag.Parse()

	if *configFile == "" {
		die(errors.New("missing -config"))
	}
	settings, err := problem.Load(*configFile)
	if err != nil {
		die(err)
	}

	log, err := newLogger(settings, *logLevel, *jsonLog)
	if err != nil {
		die(err)
	}

	die(run(os.Stdout, settings, log, *trace || settings.Trace))
}

// newLogger builds the stderr logger; flagLevel wins over the file setting.
func newLogger(s *problem.Settings, flagLevel string, asJSON bool) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if asJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	name := s.LogLevel
	if flagLevel != "" {
		name = flagLevel
	}
	level, err := logrus.ParseLevel(strings.ToLower(name))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", name)
	}
	log.SetLevel(level)

	return log, nil
}

func die(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
