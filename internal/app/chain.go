package app

import (
	"github.com/castledice/storage/internal/domain"
	"github.com/castledice/storage/internal/infrastructure/external/chain"
)

func (a *application) InitChainGateway() domain.ChainGateway {
	return chain.NewChainGateway(a.config.Chain.URL, a.config.Chain.APIKey)
}
