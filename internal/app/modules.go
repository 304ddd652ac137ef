package app

import (
	"github.com/vk/sweepctl/internal/registry"
	"github.com/vk/sweepctl/modules/categorical"
	"github.com/vk/sweepctl/modules/constant"
	"github.com/vk/sweepctl/modules/intuniform"
	"github.com/vk/sweepctl/modules/loguniform"
	"github.com/vk/sweepctl/modules/uniform"
)

// coreModules is the definitive list of all distribution kinds that are
// compiled into the sweepctl binary.
var coreModules = []registry.Module{
	&uniform.Module{},
	&loguniform.Module{},
	&intuniform.Module{},
	&categorical.Module{},
	&constant.Module{},
}
