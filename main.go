// SPDX-License-Identifier: MPL-2.0

package main

import cmd "dps-cli/cmd/dps"

func main() {
	cmd.Execute()
}
