package main

import "github.com/libimobiledevice/go-irecovery/cmd/irecovery/cmd"

func main() {
	cmd.Execute()
}
