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

type Globals struct {
	LogLevel string `help:"Set the logging level (debug|info|warn|error)" default:"info"`
}

type CLI struct {
	Globals

	Attach  AttachCmd  `cmd help:"Attach a hard disk image and print its identity"`
	Inquiry InquiryCmd `cmd help:"Attach a hard disk image and issue a local INQUIRY"`
	Version VersionCmd `cmd help:"Print the client version information"`
}
