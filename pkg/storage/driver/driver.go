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

package driver

import (
	"context"
	"io"
	"os"
)

// Object represents a read-only, fixed size, random access disk image.
type Object interface {
	io.Closer
	io.Reader
	io.ReaderAt
	io.Seeker

	// Size returns the byte length of the object.
	Size() int64

	// URL returns the URL the object was opened with.
	URL() string
}

// Driver is the interface that must be implemented by an image storage
// driver.
type Driver interface {
	// Open opens the Object for reading.
	Open(ctx context.Context, url string, size int64) (Object, error)

	// Stat returns a FileInfo describing the Object.
	Stat(ctx context.Context, url string) (os.FileInfo, error)
}
