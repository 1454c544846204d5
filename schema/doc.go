// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schema provides the value transforms shared by every record.

# Quantities

Nutrient amounts are stored at ten times their human-facing value:

	q, _ := schema.DecodeQuantity(125)  // 12.5
	raw, _ := schema.EncodeQuantity(q)  // 125

Decode rounds to one decimal place, encode to two. Negative input fails
in both directions.

# Keys

Primary keys are tagged with the entity they belong to:

	type foodKind struct{}
	func (foodKind) EntityName() string { return "Food" }

	id, err := schema.NewKey[foodKind](3)

A Key[foodKind] cannot be used where a Key[planKind] is expected.

# Failures

Every transform fails with *ValidationError, which carries the field path
and a human-readable message:

	err := schema.MacroRatio(30, 40, 29)
	// Macros ratio must be 100%
*/
package schema
