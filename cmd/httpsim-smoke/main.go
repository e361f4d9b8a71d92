// SPDX-License-Identifier: GPL-3.0-or-later

// Command httpsim-smoke wires a debug chain, a callback manager, and
// an orchestrator together and drives them over a handful of
// synthetic client contexts, printing the resulting dispositions.
//
// It does not listen on a socket or terminate TLS: the I/O layer is a
// collaborator out of scope for this module. This binary exists to
// give the wiring a runnable shape.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bassosimone/httpsim/callback"
	"github.com/bassosimone/httpsim/clientctx"
	"github.com/bassosimone/httpsim/debugchain"
	"github.com/bassosimone/httpsim/debugctx"
	"github.com/bassosimone/httpsim/pipeline"
	"github.com/bassosimone/httpsim/spanid"
	"github.com/bassosimone/httpsim/spscqueue"
)

func main() {
	spanID := spanid.New()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("spanID", spanID)

	chain := debugchain.NewChain()
	must(chain.RegisterHandler(debugchain.NewDelayHandler()))
	must(chain.RegisterHandler(debugchain.NewDisconnectHandler()))
	must(chain.RegisterHandler(debugchain.NewLogHandler(logger)))
	must(chain.RegisterHandler(debugchain.NewErrorCodeHandler()))
	defer chain.Close()

	mgr := callback.NewManager()
	mgr.RegisterStrategy(8080, callback.EchoStrategy{})
	mgr.RegisterStrategy(8443, callback.DefaultStrategy{})
	mgr.RegisterStrategy(8444, callback.NewStatusOnlyStrategy(503, "Service Unavailable"))

	// The I/O layer hands events to the pipeline through the same
	// single-producer/single-consumer bus a real listener would use;
	// here one goroutine plays both roles, pushing the whole batch
	// before draining it.
	queue := spscqueue.New[event]()
	queue.PushBatch(syntheticEvents())

	var ev event
	for queue.Pop(&ev) {
		cfg := ev.cfg
		orch := pipeline.NewOrchestrator(chain, mgr, cfg)

		disposition, err := orch.Process(ev.ctx)
		if err != nil {
			fmt.Printf("event on port %d: error: %v\n", ev.ctx.ServerPort, err)
			continue
		}
		fmt.Printf(
			"event on port %d: disposition=%s status=%d body=%q\n",
			ev.ctx.ServerPort, disposition, ev.ctx.Response.StatusCode, ev.ctx.Response.Body,
		)
	}
}

func must(d debugchain.Disposition) {
	if d.IsErr() {
		panic(d.AsError())
	}
}

type event struct {
	ctx *clientctx.ClientContext
	cfg debugctx.DebugConfig
}

func syntheticEvents() []event {
	plain := clientctx.New()
	plain.ConnectionID = 1
	plain.ServerPort = 8080
	plain.ClientIP = "203.0.113.7"
	plain.ClientPort = 51000
	plain.Request.Path = "/echo"
	plain.Request.Method = clientctx.MethodPOST
	plain.Request.Body = []byte("ping")

	logged := clientctx.New()
	logged.ConnectionID = 2
	logged.ServerPort = 8443
	logged.ClientIP = "203.0.113.8"
	logged.ClientPort = 51001
	logged.Request.Path = "/"

	forced := clientctx.New()
	forced.ConnectionID = 3
	forced.ServerPort = 8444
	forced.ClientIP = "203.0.113.9"
	forced.ClientPort = 51002
	forced.Request.Path = "/status"

	loggedCfg := debugctx.NewDebugConfig()
	loggedCfg.Enabled = true
	loggedCfg.LogPacket = true

	forcedCfg := debugctx.NewDebugConfig()
	forcedCfg.Enabled = true
	forcedCfg.ForceDisconnect = true

	return []event{
		{ctx: plain, cfg: debugctx.NewDebugConfig()},
		{ctx: logged, cfg: loggedCfg},
		{ctx: forced, cfg: forcedCfg},
	}
}
