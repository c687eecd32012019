// Copyright 2024 The CCSDS-LDPC Authors.
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

// Command ccsdsldpc expands one of the nine CCSDS LDPC code variants into
// its dense or sparse matrices and prints them, for inspection or piping
// into an external encoder/decoder. The core ldpc package does all the
// work; this command is a thin presentation layer over it.
package main

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/spacelink/ccsds-ldpc"
	"github.com/spacelink/ccsds-ldpc/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ccsdsldpc: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "ccsdsldpc",
		Short: "Expand CCSDS LDPC code descriptions into dense or sparse matrices",
	}

	var format string
	var output string
	var sparse bool
	rootCmd.PersistentFlags().StringVar(&format, "format", cfg.Output.Format, "output encoding: hex or base64")
	rootCmd.PersistentFlags().StringVar(&output, "output", cfg.Output.WriteFile, "output file path (default stdout)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the supported code names",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range allCodes() {
				fmt.Println(c)
			}
			return nil
		},
	}

	paramsCmd := &cobra.Command{
		Use:   "params [code]",
		Short: "Print a code's parameter tuple",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCode(args[0])
			if err != nil {
				return err
			}
			p := c.Params()
			fmt.Printf("Code:         %s\n", p.Code)
			fmt.Printf("N:            %d\n", p.N)
			fmt.Printf("K:            %d\n", p.K)
			fmt.Printf("P:            %d\n", p.P)
			fmt.Printf("M:            %d\n", p.M)
			fmt.Printf("C:            %d\n", p.C)
			fmt.Printf("S:            %d\n", p.S)
			fmt.Printf("GeneratorLen: %d\n", p.GeneratorLen)
			fmt.Printf("ParityLen:    %d\n", p.ParityLen)
			fmt.Printf("CiLen/CsLen:  %d/%d\n", p.CiLen, p.CsLen)
			fmt.Printf("ViLen/VsLen:  %d/%d\n", p.ViLen, p.VsLen)
			return nil
		},
	}

	generatorCmd := &cobra.Command{
		Use:   "generator [code]",
		Short: "Expand and print a code's dense generator matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCode(args[0])
			if err != nil {
				return err
			}
			g := make([]uint32, c.Params().GeneratorLen)
			c.InitGenerator(g)
			return writeWords(g, output, format)
		},
	}

	parityCheckCmd := &cobra.Command{
		Use:   "paritycheck [code]",
		Short: "Expand and print a code's parity-check matrix, dense or sparse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCode(args[0])
			if err != nil {
				return err
			}
			if !sparse {
				h := make([]uint32, c.Params().ParityLen)
				c.InitParityCheck(h)
				return writeWords(h, output, format)
			}
			p := c.Params()
			ci := make([]uint16, p.CiLen)
			cs := make([]uint16, p.CsLen)
			vi := make([]uint16, p.ViLen)
			vs := make([]uint16, p.VsLen)
			c.InitSparseParityCheck(ci, cs, vi, vs)
			text := fmt.Sprintf("ci: %v\ncs: %v\nvi: %v\nvs: %v", ci, cs, vi, vs)
			if output == "" {
				fmt.Println(text)
				return nil
			}
			return os.WriteFile(output, []byte(text+"\n"), 0644)
		},
	}
	parityCheckCmd.Flags().BoolVar(&sparse, "sparse", cfg.Output.Sparse, "emit the sparse adjacency lists (as decimal lists; --format does not apply) instead of the dense matrix")

	rootCmd.AddCommand(listCmd, paramsCmd, generatorCmd, parityCheckCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func allCodes() []ldpc.Code {
	codes := make([]ldpc.Code, 0, 9)
	for c := ldpc.Code(0); c.String() != fmt.Sprintf("Code(%d)", int(c)); c++ {
		codes = append(codes, c)
	}
	return codes
}

// parseCode looks up a Code by its String() name, case-insensitively.
func parseCode(name string) (ldpc.Code, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for _, c := range allCodes() {
		if strings.ToUpper(c.String()) == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown code %q (try: ccsdsldpc list)", name)
}

// writeWords encodes a []uint32 buffer (big-endian words) as hex or base64
// and writes it to path, or stdout if path is empty.
func writeWords(words []uint32, path, format string) error {
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(buf[4*i:], w)
	}

	var text string
	switch format {
	case "base64":
		text = base64.StdEncoding.EncodeToString(buf)
	case "hex", "":
		text = fmt.Sprintf("%x", buf)
	default:
		return fmt.Errorf("unknown --format %q (want hex or base64)", format)
	}

	if path == "" {
		fmt.Println(text)
		return nil
	}
	return os.WriteFile(path, []byte(text+"\n"), 0644)
}
