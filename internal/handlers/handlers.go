package handlers

import "github.com/daxilpatel1309/minimal-cart-grove/internal/commerce"

// Client partagé vers l'API commerce distante, injecté au démarrage
var api *commerce.Client

func Init(client *commerce.Client) {
	api = client
}
