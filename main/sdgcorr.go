package main

import "github.com/kpaschen/sdgcorr/cmd"

func main() {
	cmd.Execute()
}
