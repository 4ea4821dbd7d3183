package main

import "github.com/dtsap/geomesa-cassandra-tools/cmd"

func main() {
	cmd.Execute()
}
