package server

import "github.com/joeblew999/plat-googlefonts/pkg/fetch"

// fetchService adapts fetch.Engine to the service.Service interface.
type fetchService struct {
	engine  *fetch.Engine
	workers int
}

func newFetchService(engine *fetch.Engine, workers int) *fetchService {
	if workers < 1 {
		workers = 1
	}
	return &fetchService{engine: engine, workers: workers}
}

func (s *fetchService) Start() {
	s.engine.Start(s.workers)
}

func (s *fetchService) Stop() {
	s.engine.Stop()
}
