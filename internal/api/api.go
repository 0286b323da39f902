package api

import (
	"github.com/lealre/cafes-backend/internal/cache"
	"github.com/lealre/cafes-backend/internal/mongodb"
)

type API struct {
	Db     *mongodb.DB
	Secret *string
	Cache  *cache.Cache
}

func NewAPI(db *mongodb.DB, secret *string, cache *cache.Cache) *API {
	return &API{Db: db, Secret: secret, Cache: cache}
}
