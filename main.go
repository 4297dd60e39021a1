package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"duelpong/actors"
	"duelpong/game"
	"duelpong/server"
	"duelpong/utils"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := utils.Load(*configPath)
	if err != nil {
		log.Fatal("loading config", zap.Error(err))
	}
	if cfg.TunnelingRisk() {
		log.Warn("ball speed exceeds thinnest obstacle per step, collisions may tunnel",
			zap.Float64("ballVelocityX", cfg.BallVelocityX),
			zap.Float64("ballVelocityY", cfg.BallVelocityY),
			zap.Float64("paddleWidth", cfg.PaddleWidth),
			zap.Float64("ballSize", cfg.BallSize),
		)
	}

	engine := actors.NewEngine(log.Named("actors"))
	broadcasterPID := engine.Spawn(actors.NewProps(game.NewBroadcasterProducer(log.Named("broadcaster"))))
	gameActorPID := engine.Spawn(actors.NewProps(game.NewGameActorProducer(engine, cfg, broadcasterPID, log.Named("game"))))

	srv := server.New(cfg, engine, gameActorPID, broadcasterPID, log.Named("server"))
	mux := http.NewServeMux()
	srv.Routes(mux)

	httpServer := &http.Server{Addr: cfg.ListenAddr, Handler: mux}
	go func() {
		log.Info("listening", zap.String("addr", cfg.ListenAddr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	_ = httpServer.Close()
	engine.Shutdown(shutdownTimeout)
}
