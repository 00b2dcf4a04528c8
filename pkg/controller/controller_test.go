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
package controller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karrots/RASCSI/pkg/controller"
	"github.com/karrots/RASCSI/pkg/disk"
	"github.com/karrots/RASCSI/pkg/scsi"
)

func attachDisk(t *testing.T, ctrl *controller.Controller) (*controller.Attachment, *disk.HardDisk) {
	t.Helper()
	d := disk.NewHardDisk(disk.Config{Vendor: "QUANTUM", Revision: "0147"})
	err := d.Open("zero:1048576000")
	assert.Nil(t, err)
	return ctrl.Attach(d), d
}

func TestControllerInquiry(t *testing.T) {
	ctrl := controller.New(controller.Config{})
	defer ctrl.Close()

	a, _ := attachDisk(t, ctrl)

	buf := make([]byte, 256)
	cdb := scsi.CDB{scsi.Inquiry, 0, 0, 0, 255, 0}
	rsp := a.Execute(controller.Command{CDB: cdb, Buf: buf})

	assert.True(t, rsp.OK)
	assert.Equal(t, scsi.StatusNoError, rsp.Status)
	assert.Equal(t, 130, rsp.N)
	assert.EqualValues(t, 0x02, buf[2])
}

func TestControllerModeSelect(t *testing.T) {
	ctrl := controller.New(controller.Config{})
	defer ctrl.Close()

	a, _ := attachDisk(t, ctrl)

	buf := []byte{0x00, 0x00, 0x00, 0x00}
	cdb := scsi.CDB{scsi.ModeSelect, 0x00, 0, 0, 0, 0}
	rsp := a.Execute(controller.Command{CDB: cdb, Buf: buf, Length: len(buf)})

	assert.True(t, rsp.OK)
	assert.Equal(t, scsi.StatusNoError, rsp.Status)
}

func TestControllerUnsupportedCommand(t *testing.T) {
	ctrl := controller.New(controller.Config{})
	defer ctrl.Close()

	a, _ := attachDisk(t, ctrl)

	cdb := scsi.CDB{scsi.TestUnitReady, 0, 0, 0, 0, 0}
	rsp := a.Execute(controller.Command{CDB: cdb})

	assert.False(t, rsp.OK)
	assert.Equal(t, scsi.StatusInvalidCDB, rsp.Status)
}

func TestControllerDetach(t *testing.T) {
	ctrl := controller.New(controller.Config{})
	defer ctrl.Close()

	a, d := attachDisk(t, ctrl)
	assert.Nil(t, ctrl.Detach(a))
	assert.False(t, d.Ready())

	// Detaching twice is a no-op.
	assert.Nil(t, ctrl.Detach(a))
}

func TestControllerExecuteAfterDetach(t *testing.T) {
	ctrl := controller.New(controller.Config{})
	defer ctrl.Close()

	a, _ := attachDisk(t, ctrl)
	assert.Nil(t, ctrl.Detach(a))

	buf := make([]byte, 256)
	cdb := scsi.CDB{scsi.Inquiry, 0, 0, 0, 255, 0}
	rsp := a.Execute(controller.Command{CDB: cdb, Buf: buf})

	assert.False(t, rsp.OK)
	assert.Equal(t, scsi.StatusNotReady, rsp.Status)
}

func TestControllerExecuteAfterClose(t *testing.T) {
	ctrl := controller.New(controller.Config{})
	a, _ := attachDisk(t, ctrl)
	assert.Nil(t, ctrl.Close())

	buf := make([]byte, 64)
	cdb := scsi.CDB{scsi.Inquiry, 0, 0, 0, 36, 0}
	rsp := a.Execute(controller.Command{CDB: cdb, Buf: buf})

	assert.False(t, rsp.OK)
	assert.Equal(t, scsi.StatusNotReady, rsp.Status)
}

func TestControllerCloseDetachesDevices(t *testing.T) {
	ctrl := controller.New(controller.Config{})
	_, d := attachDisk(t, ctrl)

	assert.Nil(t, ctrl.Close())
	assert.False(t, d.Ready())
}
