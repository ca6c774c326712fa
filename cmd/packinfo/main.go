// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// packinfo prints the layout of exported containers.
//
// Every file is read as a run of containers packed back to back, starting
// at --offset. For each container it prints the byte range, the streams
// present, their lengths and the content identifier of the container.
// With --expect, a file fails unless one of its containers has the given
// identifier.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	stream "github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/core/data/id"
	"github.com/tuyennv216/BinaryContainer2-sub001/core/fault"
)

type options struct {
	quiet  bool
	idOnly bool
	offset int
	expect id.ID
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	flagSet := pflag.NewFlagSet("packinfo", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVarP(&opts.quiet, "quiet", "q", false, "report failures only")
	flagSet.BoolVar(&opts.idOnly, "id", false, "print only the full identifier of each container")
	flagSet.IntVar(&opts.offset, "offset", 0, "byte offset of the first container in each file")
	expect := flagSet.String("expect", "", "identifier that each file must contain")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: packinfo [flags] file...\n\nFlags:\n")
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if *expect != "" {
		var err error
		if opts.expect, err = id.Parse(*expect); err != nil {
			fmt.Fprintf(stderr, "packinfo: --expect: %v\n", err)
			return 2
		}
	}
	files := flagSet.Args()
	if len(files) == 0 {
		flagSet.Usage()
		return 2
	}
	if opts.offset < 0 {
		fmt.Fprintf(stderr, "packinfo: negative offset %d\n", opts.offset)
		return 2
	}

	var failures fault.List
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			failures.Collect(err)
			continue
		}
		failures.Collect(errors.Wrap(describe(stdout, path, data, opts), path))
	}
	for _, err := range failures {
		fmt.Fprintf(stderr, "packinfo: %v\n", err)
	}
	if failures.Err() != nil {
		return 1
	}
	return 0
}

// describe walks the containers of one file. It stops at the first
// container that fails to import, as nothing after it can be framed.
func describe(w io.Writer, path string, data []byte, opts options) error {
	if opts.offset > len(data) {
		return errors.Wrapf(stream.ErrMalformedStream, "offset %d past end of %d bytes", opts.offset, len(data))
	}
	found := false
	for i, pos := 0, opts.offset; pos < len(data); i++ {
		c, next, err := stream.Import(data, pos)
		if err != nil {
			return errors.Wrapf(err, "container %d", i)
		}
		sid := id.OfBytes(data[pos:next])
		found = found || sid == opts.expect
		switch {
		case opts.quiet:
		case opts.idOnly:
			fmt.Fprintln(w, sid)
		default:
			fmt.Fprintf(w, "%s#%d @%d size=%d caps=%v flags=%d items=%d arrays=%d id=%s\n",
				path, i, pos, next-pos, c.Capabilities(), c.Flags().Len(), c.ItemsLen(), c.ArraysLen(), sid.Short())
		}
		pos = next
	}
	if opts.expect.IsValid() && !found {
		return errors.Errorf("no container with id %v", opts.expect)
	}
	return nil
}
