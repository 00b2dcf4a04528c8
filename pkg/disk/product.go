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

package disk

import (
	"fmt"
)

// productBand maps a capacity tier range to a drive family name. The tier
// is the capacity in MiB (blocks >> 11 at 512-byte sectors). limit is the
// exclusive upper bound of the band.
type productBand struct {
	limit  uint64
	format string
}

var productBands = []productBand{
	{300, "PRODRIVE LPS%dS"},
	{600, "MAVERICK%dS"},
	{800, "LIGHTNING%dS"},
	{1000, "TRAILBRAZER%dS"},
	{2000, "FIREBALL%dS"},
}

// productName derives the default product string from the block count.
// Some initiators fingerprint drives by this string, so the band bounds
// and name templates must not change.
func productName(blocks uint64) string {
	tier := blocks >> 11
	for _, b := range productBands {
		if tier < b.limit {
			return fmt.Sprintf(b.format, tier)
		}
	}
	return fmt.Sprintf("FBSE%d.%dS", tier/1000, (tier%1000)/100)
}
