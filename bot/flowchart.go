package bot

import "maquis/game"

// The flowchart engine: a small directed graph of decision nodes that
// narrows down to one operation (or a pass). Node order reproduces the
// published player-aid flowchart.

type node int

const (
	nodeStart node = iota
	nodeBasesProtected
	nodeActTwice
	nodeEventOrTerror
	nodeAttack
	nodeRally
	nodeMarch
)

// Act runs one full decision pass for the revealed card and carries the
// chosen operation out on the game state.
func (b *Bot) Act() game.Action {
	return b.ActConstrained(0, nil, false)
}

// ActConstrained is Act under sequence-of-play or event constraints:
// maxSpaces caps touched spaces (0 = unlimited, 1 = the limited-operation
// slot), onlyIn restricts to a subset of spaces, free waives all resource
// costs.
func (b *Bot) ActConstrained(maxSpaces int, onlyIn []int, free bool) game.Action {
	b.turn = newTurnState(maxSpaces, onlyIn, free)

	n := nodeStart
	for {
		switch n {
		case nodeStart:
			if b.state.FrontResources == 0 && b.turn.MaxSpaces == 1 && !b.state.CanPlayEvent() {
				b.log.Info().Msg("pass: no resources, no room, no event")
				return game.Pass
			}
			n = nodeBasesProtected

		case nodeBasesProtected:
			if b.basesProtected() {
				n = nodeEventOrTerror
			} else {
				n = nodeActTwice
			}

		case nodeActTwice:
			// Acting second now with a guaranteed first slot next round, the
			// bot can afford to look past its exposed bases for one card.
			if b.state.SecondEligible && b.state.FirstNext {
				n = nodeEventOrTerror
			} else {
				n = nodeRally
			}

		case nodeEventOrTerror:
			if action, ok := b.considerEventOrTerror(); ok {
				return action
			}
			n = nodeAttack

		case nodeAttack:
			if spaces, ok := b.attack(); ok {
				b.log.Info().Msgf("attack across %d space(s)", spaces)
				return b.finishOp(spaces)
			}
			n = nodeRally

		case nodeRally:
			if spaces, ok := b.rally(); ok {
				b.log.Info().Msgf("rally across %d space(s)", spaces)
				return b.finishOp(spaces)
			}
			n = nodeMarch

		case nodeMarch:
			if spaces, ok := b.march(); ok {
				b.log.Info().Msgf("march to %d space(s)", spaces)
				return b.finishOp(spaces)
			}
			b.log.Info().Msg("pass: no operation worth running")
			return game.Pass
		}
	}
}

// considerEventOrTerror speculatively evaluates the card event and a full
// Terror pass, then commits whichever the precedence rules favor. Returns
// false when neither is taken.
func (b *Bot) considerEventOrTerror() (game.Action, bool) {
	curGov := b.state.GovernmentScore()
	curTerror := b.state.TotalTerror()

	var evTrial trial
	if b.state.CanPlayEvent() {
		evTrial = b.speculate(func(bb *Bot) bool {
			bb.state.Card.Effect(bb.state)
			return true
		})
	}

	var terrorAction game.Action
	tTrial := b.speculate(func(bb *Bot) bool {
		spaces, ok := bb.terror()
		if !ok {
			return false
		}
		terrorAction = bb.finishOp(spaces)
		return true
	})

	terrorGood := tTrial.ok &&
		(tTrial.state.GovernmentScore() < curGov || tTrial.state.TotalTerror() > curTerror)

	if evTrial.ok && tTrial.ok {
		eventGov := evTrial.state.GovernmentScore()
		terrorGov := tTrial.state.GovernmentScore()
		eventBetter := eventGov < terrorGov ||
			(eventGov == terrorGov && b.state.Rules.EventTieToEvent)
		if eventBetter && b.eventWorthPlaying(evTrial, curGov) {
			b.commit(evTrial)
			b.log.Info().Msgf("event: %s", b.state.Card.Name)
			return game.Event, true
		}
	} else if evTrial.ok {
		if b.eventWorthPlaying(evTrial, curGov) {
			b.commit(evTrial)
			b.log.Info().Msgf("event: %s", b.state.Card.Name)
			return game.Event, true
		}
	}

	if terrorGood {
		b.commit(tTrial)
		return terrorAction, true
	}
	return game.Pass, false
}

// eventWorthPlaying: always-play cards are played; the rest must have shown
// an effect in the trial and survive a 4-in-6 roll.
func (b *Bot) eventWorthPlaying(t trial, curGov int) bool {
	card := b.state.Card
	if card.CapabilityCard || card.FrontMarked {
		return true
	}
	effective := t.state.GovernmentScore() < curGov ||
		t.state.GovResources < b.state.GovResources ||
		t.state.FranceTrack > b.state.FranceTrack ||
		t.state.TotalOnMap(game.FrontBase) > b.state.TotalOnMap(game.FrontBase) ||
		t.state.FrontResources > b.state.FrontResources
	return effective && roll(b.src) <= 4
}
