package consts

const (
	VoteUpCountKey   = "vote:up:"   // vote:up:{post_type}:{post_id}
	VoteDownCountKey = "vote:down:" // vote:down:{post_type}:{post_id}
	VoteTallyDirty   = "vote:tally:dirty"
	VoteEventDedup   = "vote:event:dedup:"

	QuestionViewKey   = "question:view:"
	QuestionViewDirty = "question:view:dirty"
)
