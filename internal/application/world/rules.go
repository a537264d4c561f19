package world

import (
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/event"
)

// LevelClearFrames is how long the level complete interlude lasts.
const LevelClearFrames = 120

// resolveCollisions applies every player interaction of the frame in a fixed
// order: platform contact, coins, enemy contact, attacks, falls.
func (w *World) resolveCollisions(fell bool) {
	reg := w.level.Registry

	contact := w.combat.ResolvePlatformContact(w.player, reg)
	if contact.Bounced != 0 {
		w.publish(event.PlayerBounced{PlatformID: contact.Bounced, Strength: contact.Strength})
	}
	if contact.Hurt {
		w.playerHurt(event.CauseHazard, contact.Died)
		if w.state != state.StatePlaying {
			return
		}
	}

	for _, c := range w.combat.CollectCoins(w.player, reg.Coins) {
		w.score += c.Value
		w.coinsCollected++
		w.publish(event.CoinCollected{
			CoinID: c.ID,
			Kind:   c.Kind,
			Value:  c.Value,
			X:      c.Bounds.CenterX(),
			Y:      c.Bounds.CenterY(),
		})
	}

	if hit := w.combat.ResolveEnemyContact(w.player, reg.Enemies); hit.Hurt {
		w.playerHurt(event.CauseEnemy, hit.Died)
		if w.state != state.StatePlaying {
			return
		}
	}

	for _, h := range w.combat.ResolveAttack(w.player, reg.Enemies) {
		if !h.Killed {
			w.publish(event.EnemyHit{EnemyID: h.Enemy.ID, Health: h.Enemy.Health})
			continue
		}
		points := w.physicsCfg.Rules.EnemyDefeatScore
		w.score += points
		w.enemiesDefeated++
		w.publish(event.EnemyDefeated{EnemyID: h.Enemy.ID, Points: points})
	}

	if fell {
		w.playerFell()
	}
}

// playerHurt settles damage that already landed on the player.
func (w *World) playerHurt(cause event.DamageCause, died bool) {
	if died {
		w.publish(event.PlayerDamaged{Cause: cause, Health: 0, Lives: w.lives})
		w.gameOver("killed")
		return
	}
	w.loseLife(cause, w.physicsCfg.Feedback.HitShakeFrames)
}

// playerFell settles a fall. The penalty itself was applied by the boundary
// check, which also moved the player back to the spawn point.
func (w *World) playerFell() {
	if !w.player.IsAlive() {
		w.publish(event.PlayerDamaged{Cause: event.CauseFall, Health: 0, Lives: w.lives})
		w.gameOver("fell")
		return
	}
	w.loseLife(event.CauseFall, w.physicsCfg.Feedback.FallShakeFrames)
}

func (w *World) loseLife(cause event.DamageCause, shake int) {
	w.lives--
	w.shake = shake
	w.publish(event.PlayerDamaged{Cause: cause, Health: w.player.Health, Lives: w.lives})
	if w.lives <= 0 {
		w.lives = 0
		w.gameOver("out of lives")
	}
}

// checkConditions ends the level when the player reaches its end or the coin
// set is empty.
func (w *World) checkConditions() {
	switch {
	case w.player.Bounds.X >= w.level.EndX:
		w.completeLevel(false)
	case w.level.Registry.CountCoins() == 0:
		w.completeLevel(true)
	}
}

func (w *World) completeLevel(allCoins bool) {
	rules := w.physicsCfg.Rules

	bonus := 0
	if allCoins {
		bonus = rules.AllCoinsBonus
		w.score += bonus
	}

	if w.levelIndex+1 >= len(w.levels) {
		w.score += rules.CompletionBonus
		w.publish(event.LevelComplete{Level: w.levelIndex, AllCoins: allCoins, Bonus: bonus})
		w.gameComplete()
		return
	}

	timeBonus := w.timeRemaining * rules.TimeBonusPerSecond
	w.score += timeBonus
	w.publish(event.LevelComplete{Level: w.levelIndex, AllCoins: allCoins, Bonus: bonus, TimeBonus: timeBonus})
	w.logger.Info("level complete",
		"level", w.levelIndex,
		"all_coins", allCoins,
		"time_bonus", timeBonus,
		"score", w.score,
	)

	w.state = state.StateLevelComplete
	w.clearTimer = LevelClearFrames
}

// stepInterlude counts down the level complete screen and builds the next
// level when it ends.
func (w *World) stepInterlude() {
	w.clearTimer--
	if w.clearTimer > 0 {
		return
	}
	if err := w.LoadLevel(w.levelIndex + 1); err != nil {
		// Definitions were validated when loaded; only a bad hot reload gets here.
		w.logger.Error("failed to build next level", "level", w.levelIndex+1, "error", err)
		w.gameOver("level build failed")
		return
	}
	w.state = state.StatePlaying
}

func (w *World) gameOver(reason string) {
	w.state = state.StateGameOver
	w.recordBest()
	w.publish(event.GameOver{Score: w.score})
	w.logger.Info("game over", "reason", reason, "level", w.levelIndex, "score", w.score)
}

func (w *World) gameComplete() {
	w.state = state.StateGameComplete
	w.recordBest()
	w.publish(event.GameComplete{Score: w.score})
	w.logger.Info("game complete", "score", w.score, "best", w.bestScore)
}

func (w *World) recordBest() {
	if w.score > w.bestScore {
		w.bestScore = w.score
	}
}
