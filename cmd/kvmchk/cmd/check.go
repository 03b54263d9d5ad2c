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
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/blacktop/go-kvm"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var asJSON bool

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&asJSON, "json", false, "Output result as JSON")
}

// checkResult is the machine-readable form of a probe outcome
type checkResult struct {
	Extension string `json:"extension"`
	Value     int    `json:"value"`
	Supported bool   `json:"supported"`
	Error     string `json:"error,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check [extension]",
	Short: "Check a single kvm extension (default: KVM_CAP_ARM_EL1_32BIT)",
	Long: `Check whether the host kvm device advertises a single extension.

The extension is named by its linux/kvm.h macro, with the KVM_CAP_ prefix
optional. Without an argument the 32-bit EL1 guest capability is checked.

Exit status is 0 when the extension is supported, 1 when it is not (or
the query itself failed), and the negated errno when the kvm device
could not be opened.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := kvm.CapArmEL132Bit
		if len(args) > 0 {
			var err error
			c, err = kvm.ParseCap(args[0])
			if err != nil {
				return err
			}
		}
		os.Exit(runCheck(c, asJSON))
		return nil
	},
}

// runCheck performs the probe sequence for one extension and returns
// the process exit status.
func runCheck(c kvm.Cap, jsonOut bool) int {
	res, err := kvm.ProbeExtension(c)
	if err != nil {
		log.WithField("device", kvm.DevicePath).Errorf("cannot open kvm device: %v", err)
		return openStatus(err)
	}

	// A failed query is reported but normalized to unsupported.
	if res.QueryErr != nil {
		log.WithFields(logrus.Fields{
			"device":    kvm.DevicePath,
			"extension": res.Cap.String(),
		}).Errorf("error checking extension support: %v", res.QueryErr)
	}

	if jsonOut {
		out := checkResult{
			Extension: res.Cap.String(),
			Value:     res.Raw,
			Supported: res.Supported,
		}
		if res.QueryErr != nil {
			out.Error = res.QueryErr.Error()
		}
		data, err := json.Marshal(out)
		if err != nil {
			log.Errorf("failed to marshal result: %v", err)
			return 1
		}
		fmt.Println(string(data))
	} else if res.Supported {
		color.Green("%v: supported", res.Cap)
	} else {
		color.Red("%v: unsupported", res.Cap)
	}

	return probeStatus(res)
}

// probeStatus maps a probe result to the process exit status: 0 when
// the capability is supported, 1 otherwise.
func probeStatus(res kvm.ProbeResult) int {
	if res.Supported {
		return 0
	}
	return 1
}

// openStatus maps a device-open failure to the process exit status,
// carrying the negated errno so callers can recover the failure reason.
func openStatus(err error) int {
	var derr kvm.DeviceError
	if errors.As(err, &derr) {
		return -int(derr.Errno)
	}
	return 1
}
