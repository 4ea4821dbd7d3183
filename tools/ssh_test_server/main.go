package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	srv "github.com/dtsap/geomesa-cassandra-tools/tools/sshserv"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:20222", "listen address")
	inactive := flag.Int("inactive-polls", 0, "info polls reporting the service starting after a restart")
	flag.Parse()

	stop, err := srv.Start(*addr, &srv.Host{InactivePolls: *inactive})
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "failed to start emulated host:", err)
		os.Exit(1)
	}
	_, _ = fmt.Fprintln(os.Stderr, "emulated Cassandra admin host listening on", *addr)
	defer stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
