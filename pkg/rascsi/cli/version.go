// Copyright © 2024 the RASCSI Authors

package rascsi_cli

import (
	"fmt"
)

// Version is injected with git sha in build
var Version = ""

type VersionCmd struct{}

func (cmd *VersionCmd) Run(globals *Globals) error {
	fmt.Println(Version)
	return nil
}
