package feature

import "github.com/kobanium/Ray-sub001/pkg/board"

// RefreshAfterMove re-derives every tactical feature that depends only on the move
// just played, not on a specific candidate point: the around-last-move
// save-extension/extension/dame/capture/atari ids, the ko-recapture/
// capture-after-ko/ko-connection ids, and the remove-2-stones throw-in id.
//
// toMove is the color about to move next (the opponent of whoever just played).
// Per-point features that must be evaluated for every legal candidate
// (CheckCapture, CheckAtari, CheckSelfAtari) are the scorer's responsibility: it
// calls them once per candidate while building the move-score table, rather than
// this driver looping over the whole board on every move.
func RefreshAfterMove(pos *board.Position, toMove board.Color) {
	CheckFeaturesAroundLastMove(pos)
	CheckCaptureAfterKo(pos, toMove)
	CheckKoRecapture(pos, toMove)
	CheckKoConnection(pos)
	CheckRemove2Stones(pos, toMove)
}
