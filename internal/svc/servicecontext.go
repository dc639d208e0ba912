// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"github.com/joeblew999/plat-googlefonts/internal/config"
	"github.com/joeblew999/plat-googlefonts/pkg/fetch"
	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/queue"
)

type ServiceContext struct {
	Config config.Config
	Plugin *font.Plugin
	Queue  *queue.Queue
	Engine *fetch.Engine
}

func NewServiceContext(c config.Config, plugin *font.Plugin, q *queue.Queue, engine *fetch.Engine) *ServiceContext {
	return &ServiceContext{
		Config: c,
		Plugin: plugin,
		Queue:  q,
		Engine: engine,
	}
}
