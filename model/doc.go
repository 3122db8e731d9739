// Package model groups the value types shared across namepool: error kinds
// (types), the name universe (universe) and the used-name bit set (usedset).
package model
