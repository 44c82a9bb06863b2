package main

import (
	"os"
	"os/signal"
	"syscall"

	"workorder/server"
	"workorder/utils"
)

func main() {
	srv := server.ServerInit()
	go srv.Start()
	utils.Logger.Info("server initialized...")

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	srv.Stop()
	utils.SyncLogger()
}
