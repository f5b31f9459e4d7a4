package main

import (
	"context"
	"os"
	"os/signal"
	"steamscraper/cmd/steamscraper/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := commands.ExecuteContext(ctx)
	stop()
	os.Exit(code)
}
