// Copyright © 2024 the RASCSI Authors
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

package rascsi_cli

import (
	"fmt"

	"github.com/alecthomas/units"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/karrots/RASCSI/pkg/disk"
)

type AttachCmd struct {
	Image string      `arg help:"URL of the raw hard disk image"`
	Disk  disk.Config `embed prefix:"disk-"`
}

func (cmd *AttachCmd) Run(globals *Globals) error {
	d := disk.NewHardDisk(cmd.Disk)
	if err := d.Open(cmd.Image); err != nil {
		zap.L().Fatal("attaching hard disk image", zap.String("image", cmd.Image), zap.Error(err))
	}

	geom := d.Geometry()
	id := d.Identity()
	capacity := units.Base2Bytes(int64(geom.BlockCount) << uint(geom.SectorSizeExponent))

	label := color.New(color.Bold).SprintfFunc()
	fmt.Printf("%s %s\n", label("%-9s", "Image:"), d.URL())
	fmt.Printf("%s %s\n", label("%-9s", "Vendor:"), id.Vendor)
	fmt.Printf("%s %s\n", label("%-9s", "Product:"), id.Product)
	fmt.Printf("%s %s\n", label("%-9s", "Revision:"), id.Revision)
	fmt.Printf("%s %s (%d blocks of %d bytes)\n",
		label("%-9s", "Capacity:"), capacity, geom.BlockCount, geom.SectorSize())
	return nil
}
