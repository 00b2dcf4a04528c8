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
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"github.com/karrots/RASCSI/pkg/controller"
	"github.com/karrots/RASCSI/pkg/disk"
	"github.com/karrots/RASCSI/pkg/scsi"
)

type InquiryCmd struct {
	Image      string            `arg help:"URL of the raw hard disk image"`
	Alloc      int               `help:"INQUIRY allocation length" default:"130"`
	Disk       disk.Config       `embed prefix:"disk-"`
	Controller controller.Config `embed prefix:"controller-"`
}

func (cmd *InquiryCmd) Run(globals *Globals) error {
	if cmd.Alloc < 0 || cmd.Alloc > 255 {
		return fmt.Errorf("allocation length must be 0-255, got %d", cmd.Alloc)
	}

	d := disk.NewHardDisk(cmd.Disk)
	if err := d.Open(cmd.Image); err != nil {
		zap.L().Fatal("attaching hard disk image", zap.String("image", cmd.Image), zap.Error(err))
	}

	ctrl := controller.New(cmd.Controller)
	defer ctrl.Close()
	a := ctrl.Attach(d)

	cdb := scsi.CDB{scsi.Inquiry, 0, 0, 0, byte(cmd.Alloc), 0}
	buf := make([]byte, 256)
	rsp := a.Execute(controller.Command{CDB: cdb, Buf: buf})
	if rsp.Status != scsi.StatusNoError {
		zap.L().Fatal("inquiry rejected", zap.Stringer("status", rsp.Status))
	}

	fmt.Print(hex.Dump(buf[:rsp.N]))
	return nil
}
