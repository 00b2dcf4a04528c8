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
package scsi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karrots/RASCSI/pkg/scsi"
)

func TestCDBAccessors(t *testing.T) {
	cdb := scsi.CDB{scsi.Inquiry, 0x00, 0, 0, 96, 0}
	assert.EqualValues(t, scsi.Inquiry, cdb.OpCode())
	assert.False(t, cdb.EVPD())
	assert.EqualValues(t, 0, cdb.LUN())
	assert.False(t, cdb.PageFormat())
	assert.Equal(t, 96, cdb.AllocationLength())

	cdb = scsi.CDB{scsi.ModeSelect, 0x51, 0, 0, 0, 0}
	assert.True(t, cdb.EVPD())
	assert.EqualValues(t, 2, cdb.LUN())
	assert.True(t, cdb.PageFormat())
	assert.Equal(t, 0, cdb.AllocationLength())

	cdb = scsi.CDB{scsi.Inquiry, 0xe0, 0, 0, 255, 0}
	assert.EqualValues(t, 7, cdb.LUN())
	assert.Equal(t, 255, cdb.AllocationLength())
}

func TestFixedString(t *testing.T) {
	assert.Equal(t, []byte("QUANTUM "), scsi.FixedString("QUANTUM", 8))
	assert.Equal(t, []byte("FIREBALL1000S   "), scsi.FixedString("FIREBALL1000S", 16))
	assert.Equal(t, []byte("TOOLONGVE"), scsi.FixedString("TOOLONGVENDOR", 9))
	assert.Equal(t, []byte("    "), scsi.FixedString("", 4))
}
