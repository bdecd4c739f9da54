package fx

import (
	"github.com/Syug0/LOL-team-assignment/internal/api"
	"github.com/Syug0/LOL-team-assignment/internal/cache"
	"github.com/Syug0/LOL-team-assignment/internal/config"
	"github.com/Syug0/LOL-team-assignment/internal/logger"
	"github.com/Syug0/LOL-team-assignment/internal/server"
	"github.com/Syug0/LOL-team-assignment/internal/service"

	"go.uber.org/fx"
)

func ProvideRiotAPI(client *api.RiotClient) service.RiotAPI {
	return client
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	// shared upstream cache + limiter
	fx.Provide(cache.New),
	// api client
	fx.Provide(api.NewRiotClient),
	fx.Provide(ProvideRiotAPI),
	// svc
	fx.Provide(service.NewRoleService),
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewTeamService),
	// server
	fx.Provide(server.NewTeamServer),
)
