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

package storage

import (
	"context"
	"os"
	"sync"

	"github.com/karrots/RASCSI/pkg/storage/driver"
	filedriver "github.com/karrots/RASCSI/pkg/storage/file"
	zerodriver "github.com/karrots/RASCSI/pkg/storage/zero"
)

// Object represents a read-only, fixed size, random access disk image.
type Object interface {
	driver.Object
}

// Open opens the Object for reading.
func Open(url string) (Object, error) {
	return OpenContextSize(context.Background(), url, -1)
}

// OpenContextSize opens the Object with the context and declared size. A
// negative size means the driver should discover it.
func OpenContextSize(ctx context.Context, url string, size int64) (Object, error) {
	registerDefaultsOnce.Do(registerDefaults)

	drvr, err := driver.Find(url)
	if err != nil {
		return nil, err
	}
	return drvr.Open(ctx, url, size)
}

// Stat returns a FileInfo describing the Object.
func Stat(url string) (os.FileInfo, error) {
	return StatContext(context.Background(), url)
}

// StatContext returns a FileInfo describing the Object.
func StatContext(ctx context.Context, url string) (os.FileInfo, error) {
	registerDefaultsOnce.Do(registerDefaults)

	drvr, err := driver.Find(url)
	if err != nil {
		return nil, err
	}
	return drvr.Stat(ctx, url)
}

var disableRegisterDefaults bool
var registerDefaultsOnce sync.Once

// DisableDefaultDrivers is typically used in tests to disable registering
// the default storage drivers.
func DisableDefaultDrivers() {
	disableRegisterDefaults = true
}

func registerDefaults() {
	if !disableRegisterDefaults {
		filedriver.RegisterDefaultDriver()
		zerodriver.RegisterDefaultDriver()
	}
}
