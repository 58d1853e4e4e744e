// Package sysinfo builds the text report served by the supplemental INFO
// command, grounded on the teacher's internal/common.RedisInfo.Build: a
// flat set of key:value lines drawn from process and host statistics.
package sysinfo

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/mem"
)

// Reporter tracks the state INFO needs that isn't already in the store:
// server start time and the live connection count.
type Reporter struct {
	startTime time.Time
	conns     func() int64
	keyCount  func() int
}

// New returns a Reporter whose clock starts now. conns and keyCount are
// called lazily each time Report runs, so they always reflect live state.
func New(conns func() int64, keyCount func() int) *Reporter {
	return &Reporter{startTime: time.Now(), conns: conns, keyCount: keyCount}
}

// Report renders the current INFO text block. Memory statistics come from
// gopsutil's VirtualMemory; if the host call fails (e.g. an unsupported
// platform) the memory section is omitted rather than failing the whole
// command.
func (r *Reporter) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "pid:%d\r\n", os.Getpid())
	fmt.Fprintf(&b, "uptime_seconds:%d\r\n", int64(time.Since(r.startTime).Seconds()))
	fmt.Fprintf(&b, "connected_clients:%d\r\n", r.conns())
	fmt.Fprintf(&b, "keyspace_keys:%d\r\n", r.keyCount())

	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Fprintf(&b, "mem_total_bytes:%d\r\n", vm.Total)
		fmt.Fprintf(&b, "mem_used_bytes:%d\r\n", vm.Used)
		fmt.Fprintf(&b, "mem_available_bytes:%d\r\n", vm.Available)
	}

	return b.String()
}
