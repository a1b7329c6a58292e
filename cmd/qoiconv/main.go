package main

import "github.com/MrMatrix1729/qoi/cmd/qoiconv/cmd"

func main() {
	cmd.Execute()
}
