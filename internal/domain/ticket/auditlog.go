package ticket

// AuditEntry is one line of a ticket's activity feed: status changes,
// claims, comments. The backend writes these; the console only lists them.
type AuditEntry struct {
	ID        int            `json:"id"`
	TicketID  int            `json:"ticket"`
	LogType   string         `json:"log_type"`
	Message   string         `json:"message"`
	Actor     *string        `json:"actor"`
	Data      map[string]any `json:"data"`
	CreatedAt string         `json:"created_at"`
}
