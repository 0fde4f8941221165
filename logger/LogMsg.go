package logger

const SelectedBehaviorMsg = "Selected opponent AI: %s"
const BehaviorStubMsg = "Opponent AI %q is not implemented, using %q"

const RoundStartMsg = "Round %s started (AI: %s)"
const RoundRestartMsg = "Round %s ended, restarting as %s"

const OpponentDefeatedMsg = "Opponent hit! You Win! (round %s, tick %d)"
const PlayerStruckMsg = "Player hit! Game Over! (round %s, tick %d)"

const SpriteLoadFailedMsg = "Error loading sprite %s: %v, using placeholder"
const FontLoadFailedMsg = "Error loading font: %v, using basicfont"

const QuitMsg = "Quit requested from %s"
