// Package bridge connects the dashboard to the embedding host: a fixed
// catalog of outbound one-way action signals posted as verbatim strings,
// and an inbound WebSocket endpoint through which the host pushes metric
// updates and page switches.
package bridge

// Action is one outbound host signal: a stable identifier sent verbatim
// over the channel, and the label shown on its dashboard control.
type Action struct {
	ID    string
	Label string
}

// Catalog is the fixed set of action signals the dashboard can post.
// The identifier strings are the wire payloads; the host matches on them
// verbatim.
var Catalog = []Action{
	{ID: "clean-system", Label: "Full System Clean"},
	{ID: "clear-cache", Label: "Clear Cache"},
	{ID: "clear-temp", Label: "Clear Temp Files"},
	{ID: "empty-trash", Label: "Empty Trash"},
	{ID: "optimize-memory", Label: "Optimize Memory"},
	{ID: "defrag-disk", Label: "Defragment Disk"},
	{ID: "trim-ssd", Label: "Trim SSD"},
	{ID: "scan-malware", Label: "Scan for Malware"},
	{ID: "check-updates", Label: "Check for Updates"},
	{ID: "update-drivers", Label: "Update Drivers"},
	{ID: "flush-dns", Label: "Flush DNS"},
	{ID: "flush-network", Label: "Flush Network"},
	{ID: "renew-ip", Label: "Renew IP Lease"},
	{ID: "speed-test", Label: "Run Speed Test"},
	{ID: "kill-background", Label: "Kill Background Apps"},
	{ID: "restart-shell", Label: "Restart Shell"},
	{ID: "rotate-logs", Label: "Rotate Logs"},
	{ID: "backup-now", Label: "Back Up Now"},
	{ID: "create-restore-point", Label: "Create Restore Point"},
	{ID: "power-saver", Label: "Power Saver Mode"},
	{ID: "high-performance", Label: "High Performance Mode"},
	{ID: "balanced-power", Label: "Balanced Power Mode"},
	{ID: "mute-notifications", Label: "Mute Notifications"},
	{ID: "export-report", Label: "Export System Report"},
}

// ValidAction reports whether id is in the outbound catalog.
func ValidAction(id string) bool {
	for _, a := range Catalog {
		if a.ID == id {
			return true
		}
	}
	return false
}
