// Package contracts links every record package into the schema catalog.
// Import it for its side effects when records are looked up by name.
package contracts

import (
	_ "lucid-schemas/pkg/contracts/assumptions"
	_ "lucid-schemas/pkg/contracts/company"
	_ "lucid-schemas/pkg/contracts/hiring"
	_ "lucid-schemas/pkg/contracts/plot"
	_ "lucid-schemas/pkg/contracts/product"
	_ "lucid-schemas/pkg/contracts/prompt"
	_ "lucid-schemas/pkg/contracts/salary"
)
