/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/blacktop/go-kvm"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known kvm extensions and their host support",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := kvm.Open()
		if err != nil {
			return fmt.Errorf("cannot open kvm device: %w", err)
		}
		defer dev.Close()

		version, err := dev.APIVersion()
		if err != nil {
			return fmt.Errorf("failed to query API version: %w", err)
		}
		fmt.Printf("KVM API version: %d\n\n", version)

		for _, c := range kvm.AllCaps() {
			val, err := dev.CheckExtension(c)
			if err != nil {
				color.Yellow("%v: query failed (%v)", c, err)
				continue
			}
			if val > 0 {
				color.Green("%v: %d", c, val)
			} else {
				fmt.Printf("%v: %d\n", c, val)
			}
		}

		return nil
	},
}
