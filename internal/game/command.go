package game

import "context"

type CommandType string

const (
	CmdJoin           CommandType = "JOIN"
	CmdLeave          CommandType = "LEAVE"
	CmdSetOwner       CommandType = "SET_OWNER"
	CmdSetMaxScore    CommandType = "SET_MAX_SCORE"
	CmdChangeSettings CommandType = "CHANGE_SETTINGS"
	CmdAddDeck        CommandType = "ADD_DECK"
	CmdRemoveDeck     CommandType = "REMOVE_DECK"
	CmdStartGame      CommandType = "START_GAME"
	CmdSubmitPlay     CommandType = "SUBMIT_PLAY"
	CmdJudgePlay      CommandType = "JUDGE_PLAY"
	CmdRestartGame    CommandType = "RESTART_GAME"
)

// Command is a mutating request against a session. Only the fields relevant
// to Type are read.
type Command struct {
	Type       CommandType
	Player     Player  // JOIN, SET_OWNER
	PlayerID   string  // LEAVE, SUBMIT_PLAY, JUDGE_PLAY (candidate winner)
	JudgedByID string  // JUDGE_PLAY
	MaxScore   int     // SET_MAX_SCORE, CHANGE_SETTINGS
	Packs      []int64 // CHANGE_SETTINGS
	PackID     int64   // ADD_DECK, REMOVE_DECK
	CardIDs    []int64 // SUBMIT_PLAY
}

// Apply dispatches a command to the session. A non-nil error means the
// command was rejected and the session is unchanged; commands that consult
// the catalog fetch everything before mutating anything.
func (g *Session) Apply(ctx context.Context, cmd Command) error {
	switch cmd.Type {
	case CmdJoin:
		return g.AddPlayer(cmd.Player)
	case CmdLeave:
		return g.RemovePlayer(cmd.PlayerID)
	case CmdSetOwner:
		return g.SetOwner(cmd.Player)
	case CmdSetMaxScore:
		return g.SetMaxScore(cmd.MaxScore)
	case CmdChangeSettings:
		return g.ChangeSettings(cmd.MaxScore, cmd.Packs)
	case CmdAddDeck:
		g.AddPack(cmd.PackID)
		return nil
	case CmdRemoveDeck:
		g.RemovePack(cmd.PackID)
		return nil
	case CmdStartGame:
		return g.Start(ctx)
	case CmdSubmitPlay:
		return g.SubmitPlay(ctx, cmd.PlayerID, cmd.CardIDs)
	case CmdJudgePlay:
		return g.JudgePlay(ctx, cmd.PlayerID, cmd.JudgedByID)
	case CmdRestartGame:
		return g.Restart()
	default:
		return ErrUnsupportedCommand
	}
}
