// Copyright 2025 go-highway Authors
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


package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-collections/collections/arraylist"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "arraylist",
		Short:         "Exercise the arraylist container",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newSortCmd(), newDemoCmd())
	return root
}

func newSortCmd() *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "sort [int...]",
		Short: "Sort integers given as arguments or on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			var list *arraylist.Array[int]
			var err error
			if len(args) > 0 {
				list, err = parseInts(args)
			} else {
				list, err = readInts(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			order := cmp.Compare[int]
			if reverse {
				order = func(a, b int) int { return cmp.Compare(b, a) }
			}
			list.Sort(order)

			out := cmd.OutOrStdout()
			for _, v := range list.All() {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "sort in descending order")
	return cmd
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through insert, remove, sort and replace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	list := arraylist.Of(5, 4, 1, 2, 7)
	fmt.Fprintf(w, "start:        %v size=%d\n", list, list.Size())

	if err := list.AddAt(0, 100); err != nil {
		return err
	}
	fmt.Fprintf(w, "add(100, 0):  %v size=%d\n", list, list.Size())

	removed, err := list.Remove(1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "remove(1):    %v removed=%d\n", list, removed)

	list.Sort(cmp.Compare[int])
	fmt.Fprintf(w, "sort:         %v\n", list)

	if err := list.Replace(0, 9); err != nil {
		return err
	}
	fmt.Fprintf(w, "replace(0,9): %v\n", list)

	for _, index := range []int{-1, list.Size()} {
		if _, err := list.Get(index); err != nil {
			fmt.Fprintf(w, "get(%d):      %v\n", index, err)
		}
	}
	return nil
}

func parseInts(fields []string) (*arraylist.Array[int], error) {
	list := arraylist.New[int]()
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", f)
		}
		list.Add(v)
	}
	return list, nil
}

func readInts(r io.Reader) (*arraylist.Array[int], error) {
	var fields []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return parseInts(fields)
}
