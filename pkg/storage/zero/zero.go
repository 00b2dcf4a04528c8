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

package zerodriver

import (
	"context"
	"fmt"
	stdurl "net/url"
	"os"
	"strconv"

	"github.com/karrots/RASCSI/pkg/storage/driver"
)

// Driver is the zero URI scheme storage driver. A URL of the form
// "zero:<size>" names an all-zero image of exactly size bytes. Nothing is
// allocated, which makes it the natural backing for capacity-boundary
// tests that would otherwise need terabyte files.
type Driver struct{}

func (d *Driver) Open(ctx context.Context, url string, size int64) (driver.Object, error) {
	usize, err := parse(url)
	if err != nil {
		return nil, err
	}

	return &object{
		url:  url,
		size: usize,
	}, nil
}

func (d *Driver) Stat(ctx context.Context, url string) (os.FileInfo, error) {
	usize, err := parse(url)
	if err != nil {
		return nil, err
	}

	return &finfo{url: url, size: usize}, nil
}

func parse(url string) (int64, error) {
	u, err := stdurl.Parse(url)
	if err != nil {
		return 0, err
	}

	if u.Scheme != "zero" {
		return 0, fmt.Errorf("zerodriver: unsupported URI scheme %q", u.Scheme)
	}

	size, err := strconv.ParseInt(u.Opaque, 10, 64)
	if err != nil || size < 0 {
		return 0, fmt.Errorf("zerodriver: invalid URI %q", url)
	}
	return size, nil
}

func RegisterDefaultDriver() {
	driver.Register("zero", &Driver{})
}
