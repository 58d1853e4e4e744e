// Command go-redis-lite starts a minimal RESP server on 127.0.0.1:6379.
package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/akashmaji946/go-redis-lite/internal/dispatch"
	"github.com/akashmaji946/go-redis-lite/internal/driver"
	"github.com/akashmaji946/go-redis-lite/internal/logging"
	"github.com/akashmaji946/go-redis-lite/internal/store"
	"github.com/akashmaji946/go-redis-lite/internal/sysinfo"
)

const listenAddr = "127.0.0.1:6379"

const banner = `
   ██████╗  ██████╗ ██╗     ██╗████████╗███████╗
  ██╔════╝ ██╔═══██╗██║     ██║╚══██╔══╝██╔════╝
  ██║  ███╗██║   ██║██║     ██║   ██║   █████╗
  ██║   ██║██║   ██║██║     ██║   ██║   ██╔══╝
  ╚██████╔╝╚██████╔╝███████╗██║   ██║   ███████╗
   ╚═════╝  ╚═════╝ ╚══════╝╚═╝   ╚═╝   ╚══════╝
          >>> go-redis-lite <<<
`

var log = logging.New()

func main() {
	fmt.Println(banner)

	db := store.New()
	var connCount int64
	info := sysinfo.New(
		func() int64 { return atomic.LoadInt64(&connCount) },
		db.Len,
	)
	d := dispatch.New(db, info)

	stopReaper := make(chan struct{})
	go db.RunReaper(stopReaper)
	defer close(stopReaper)

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		log.Error("failed to listen on %s: %v", listenAddr, err)
		os.Exit(1)
	}
	log.Info("listening on %s", listenAddr)
	fmt.Printf("go-redis-lite is up on %s\n", listenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("signal received, shutting down listener")
		ln.Close()
	}()

	var wg sync.WaitGroup
	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Warn("listener closed: %v", err)
			break
		}
		atomic.AddInt64(&connCount, 1)
		log.Info("accepted connection from %s", conn.RemoteAddr())

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer atomic.AddInt64(&connCount, -1)
			driver.Serve(conn, d, log)
			log.Info("closed connection from %s", conn.RemoteAddr())
		}()
	}
	wg.Wait()
	log.Warn("all connections closed, goodbye")
}
