/*
Package operation wires the config, stripping, backup and status
packages into the passes the CLI exposes.

	+----------+     +-----------+     +----------+
	|  Strip   | --> | Relocate  |     |  Status  |
	| (rewrite)|     | (.old ->  |     | (read-   |
	|          |     |  backups) |     |  only)   |
	+----------+     +-----------+     +----------+

🎯 Purpose:
- Strip: rewrite every matched file without its marker lines, keeping
  a .old backup next to each
- Relocate: move all .old backups into the backup directory
- Status: scan and report marker counts without touching anything

🔄 Flow:
A full run is Strip then Relocate, exactly once. Relocation never runs
before stripping has finished. The first I/O error aborts the run with
no rollback; files already processed keep their post-strip state.

⚡ Key Responsibilities:
- Per-file progress reporting through the user logger
- Step sequencing via Runner (sync by default, async opt-in)
- Error propagation with context (which file, which step)
*/
package operation
