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

// Package controller delivers command descriptor blocks to attached
// devices the way a SCSI bus would: one command outstanding per device at
// a time, with the resulting status code carried back to the caller.
package controller

import (
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/karrots/RASCSI/pkg/scsi"
)

// Device command handling advertised to SCSI-2.
const (
	protocolVersionMajor = 2
	protocolVersionMinor = 0
)

var commandsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rascsi_commands_total",
		Help: "A counter of SCSI commands completed, by resulting status.",
	},
	[]string{"status"},
)

func init() {
	prometheus.MustRegister(commandsTotal)
}

type Config struct {
	QueueDepth int `help:"Commands buffered per attached device" default:"8"`
}

// Command is one CDB together with the transport-owned data buffer. For
// parameter-out commands Length is the count of meaningful bytes in Buf.
type Command struct {
	CDB    scsi.CDB
	Buf    []byte
	Length int
}

// Response carries a command's outcome back to the transport: bytes
// written into Buf for data-in commands, acceptance for parameter-out
// commands, and the status code in every case.
type Response struct {
	N      int
	OK     bool
	Status scsi.StatusCode
}

// Device is the command-processing core the controller drives.
type Device interface {
	Inquiry(cdb scsi.CDB, buf []byte, major, minor int) (int, scsi.StatusCode)
	ModeSelect(cdb scsi.CDB, buf []byte, length int) (bool, scsi.StatusCode)
	Close() error
}

// Attachment is a device bound to the controller. Commands executed
// through one attachment are serialized by its worker goroutine.
type Attachment struct {
	ID uuid.UUID

	dev    Device
	in     chan request
	closed chan struct{}
}

type request struct {
	cmd Command
	out chan Response
}

// Execute delivers one command and blocks until the device has answered.
// Commands executed against a detached attachment come back NotReady.
func (a *Attachment) Execute(cmd Command) Response {
	out := make(chan Response, 1)
	select {
	case a.in <- request{cmd: cmd, out: out}:
	case <-a.closed:
		return Response{Status: scsi.StatusNotReady}
	}

	select {
	case rsp := <-out:
		return rsp
	case <-a.closed:
		// The worker answers its whole queue before exiting, so prefer
		// that answer when it has already arrived.
		select {
		case rsp := <-out:
			return rsp
		default:
			return Response{Status: scsi.StatusNotReady}
		}
	}
}

type Controller struct {
	cfg Config

	mu          sync.Mutex
	wg          sync.WaitGroup
	attachments map[uuid.UUID]*Attachment
}

func New(cfg Config) *Controller {
	if cfg.QueueDepth <= 0 {
		cfg.QueueDepth = 8
	}
	return &Controller{
		cfg:         cfg,
		attachments: make(map[uuid.UUID]*Attachment),
	}
}

// Attach binds a device and starts its command worker.
func (c *Controller) Attach(dev Device) *Attachment {
	a := &Attachment{
		ID:     uuid.New(),
		dev:    dev,
		in:     make(chan request, c.cfg.QueueDepth),
		closed: make(chan struct{}),
	}

	c.mu.Lock()
	c.attachments[a.ID] = a
	c.mu.Unlock()

	c.wg.Add(1)
	go c.serve(a)
	return a
}

func (c *Controller) serve(a *Attachment) {
	defer c.wg.Done()
	for {
		select {
		case <-a.closed:
			// Answer everything still queued so no Execute is left
			// blocked on a response that would never come.
			for {
				select {
				case req := <-a.in:
					req.out <- Response{Status: scsi.StatusNotReady}
				default:
					return
				}
			}
		case req := <-a.in:
			rsp := dispatch(a.dev, req.cmd)
			commandsTotal.WithLabelValues(rsp.Status.String()).Inc()
			req.out <- rsp
		}
	}
}

func dispatch(dev Device, cmd Command) Response {
	switch cmd.CDB.OpCode() {
	case scsi.Inquiry:
		n, status := dev.Inquiry(cmd.CDB, cmd.Buf, protocolVersionMajor, protocolVersionMinor)
		return Response{N: n, OK: status == scsi.StatusNoError, Status: status}
	case scsi.ModeSelect:
		ok, status := dev.ModeSelect(cmd.CDB, cmd.Buf, cmd.Length)
		return Response{OK: ok, Status: status}
	default:
		zap.L().Sugar().Warnf("ignoring unsupported SCSI command 0x%x", cmd.CDB.OpCode())
		return Response{Status: scsi.StatusInvalidCDB}
	}
}

// Detach stops the attachment's worker and closes its device.
func (c *Controller) Detach(a *Attachment) error {
	c.mu.Lock()
	_, ok := c.attachments[a.ID]
	delete(c.attachments, a.ID)
	c.mu.Unlock()
	if !ok {
		return nil
	}

	close(a.closed)
	return a.dev.Close()
}

// Close stops every worker and closes every attached device, aggregating
// close failures.
func (c *Controller) Close() error {
	c.mu.Lock()
	attached := make([]*Attachment, 0, len(c.attachments))
	for _, a := range c.attachments {
		attached = append(attached, a)
	}
	c.attachments = make(map[uuid.UUID]*Attachment)
	c.mu.Unlock()

	for _, a := range attached {
		close(a.closed)
	}
	c.wg.Wait()

	var result error
	for _, a := range attached {
		if err := a.dev.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}
