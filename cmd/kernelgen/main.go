// Copyright 2025 go-linalg Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command kernelgen writes typed wrappers for the generic kernels in
// la/contrib, one per native element type:
//
//	//go:generate go run ../../../cmd/kernelgen --kernel trmv --output zz_trmv_gen.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	var g Generator
	flag.StringVar(&g.Kernel, "kernel", "", "kernel to specialize ("+strings.Join(KernelNames(), ", ")+")")
	flag.StringVar(&g.Output, "output", "", "output file (default zz_<kernel>_gen.go)")
	flag.StringSliceVar(&g.Types, "types", nil, "element types to emit (default all native types)")
	verbose := flag.BoolP("verbose", "v", false, "log progress")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if g.Kernel == "" {
		fmt.Fprintln(os.Stderr, "kernelgen: -kernel is required")
		flag.Usage()
		os.Exit(2)
	}
	if err := g.Run(); err != nil {
		log.Fatal().Err(err).Str("kernel", g.Kernel).Msg("generation failed")
	}
	log.Debug().Str("kernel", g.Kernel).Str("output", g.Output).Msg("wrote wrappers")
}
