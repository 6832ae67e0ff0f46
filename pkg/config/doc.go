/*
Package config manages configuration parsing and validation for striprc.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   YAML    | |  JSON  | |   HCL   |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Loads configuration from YAML, JSON, or HCL files
- Applies STRIPRC_* environment overrides
- Fills unset fields with the original tooling's defaults
- Validates directories, patterns, and marker rules

🔄 Flow:
1. Read configuration from file (missing file = defaults)
2. Parse format-specific syntax
3. Overlay environment variables
4. Fill defaults and validate

📝 Design Philosophy:
The config package is the source of truth for all paths and rules. The
source and backup directories are both explicit fields so the rest of
the code never reads ambient location context or derives one path from
another by string substitution.
*/
package config
