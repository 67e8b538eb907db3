package main

var opts struct {
	GRPC struct {
		BindAddr string `long:"bind-addr" description:"address to bind grpc server" env:"BIND_ADDR" default:":3000"`
	} `group:"grpc" namespace:"grpc" env-namespace:"GRPC"`

	RestAPI struct {
		Enabled  bool   `long:"enabled" description:"enable REST API" env:"ENABLED"`
		BindAddr string `long:"bind-addr" description:"address to bind REST API server" env:"BIND_ADDR" default:":8000"`
	} `group:"rest-api" namespace:"rest-api" env-namespace:"REST_API"`

	Verbose bool `long:"verbose" description:"verbose mode" env:"VERBOSE"`
}
