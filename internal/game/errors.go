package game

import "errors"

var ErrPlayerExists = errors.New("player already joined")
var ErrUnknownPlayer = errors.New("unknown player")
var ErrNotMember = errors.New("player is not a session member")
var ErrInvalidMaxScore = errors.New("max score must be positive")
var ErrNoOwner = errors.New("session has no owner")
var ErrNotEnoughPlayers = errors.New("need at least two players")
var ErrGameInProgress = errors.New("game already in progress")
var ErrGameOver = errors.New("game already has a winner")
var ErrGameNotOver = errors.New("game has no winner yet")
var ErrNoActiveRound = errors.New("no active round")
var ErrRoundResolved = errors.New("round already resolved")
var ErrJudgeCannotPlay = errors.New("judge cannot submit a play")
var ErrDuplicatePlay = errors.New("player already submitted a play")
var ErrWrongCardCount = errors.New("card count does not match prompt pick")
var ErrUnknownCard = errors.New("unknown card id")
var ErrNotJudge = errors.New("only the round judge can pick a winner")
var ErrUnsupportedCommand = errors.New("unsupported command")
