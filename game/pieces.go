package game

import "fmt"

// Kind identifies one kind of playing piece.
type Kind int

const (
	FrenchTroops Kind = iota
	AlgerianTroops
	FrenchPolice
	AlgerianPolice
	HiddenGuerrillas
	ActiveGuerrillas
	GovBase
	FrontBase

	numKinds
)

var kindNames = []string{
	"french troops", "algerian troops", "french police", "algerian police",
	"hidden guerrillas", "active guerrillas", "government base", "front base",
}

func (k Kind) String() string { return kindNames[k] }

// PieceCount holds a number of pieces per kind. It is a small value type:
// arithmetic returns new counts and never mutates the receiver. A count can
// not go negative; asking it to is a caller bug.
type PieceCount [numKinds]int

// Of builds a count holding n pieces of one kind.
func Of(k Kind, n int) PieceCount {
	var p PieceCount
	p[k] = n
	return p
}

func (p PieceCount) Add(other PieceCount) PieceCount {
	for k := range p {
		p[k] += other[k]
	}
	return p
}

func (p PieceCount) Sub(other PieceCount) PieceCount {
	for k := range p {
		p[k] -= other[k]
		if p[k] < 0 {
			panic(fmt.Sprintf("piece count below zero: %d %s", p[k], Kind(k)))
		}
	}
	return p
}

// Only keeps the named kinds and zeroes the rest.
func (p PieceCount) Only(kinds ...Kind) PieceCount {
	var kept PieceCount
	for _, k := range kinds {
		kept[k] = p[k]
	}
	return kept
}

func (p PieceCount) Total() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}

// Cubes counts troops and police of both services.
func (p PieceCount) Cubes() int {
	return p[FrenchTroops] + p[AlgerianTroops] + p[FrenchPolice] + p[AlgerianPolice]
}

func (p PieceCount) Guerrillas() int {
	return p[HiddenGuerrillas] + p[ActiveGuerrillas]
}

func (p PieceCount) Bases() int {
	return p[GovBase] + p[FrontBase]
}

// GovPieces counts everything the government faction owns.
func (p PieceCount) GovPieces() int {
	return p.Cubes() + p[GovBase]
}

// FrontPieces counts everything the insurgent faction owns.
func (p PieceCount) FrontPieces() int {
	return p.Guerrillas() + p[FrontBase]
}
