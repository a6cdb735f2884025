// Package division defines the administrative division domain model:
// regions, districts, and villages forming a strict three-level tree.
//
// Every record carries its name in up to four script variants (Uzbek Latin,
// Uzbek Cyrillic, Russian, English). NameUz is the canonical identifier:
// unique globally for regions and unique within the parent scope for
// districts and villages.
//
// The Entity type names the three levels and encodes their dependency order;
// a district cannot be used without regions enabled, nor a village without
// districts. Enforcement against a live configuration happens in the config
// package, which consumes Dependencies from here.
package division
