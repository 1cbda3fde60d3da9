package repository

import "strings"

// CatFilter holds the optional listing filters. Empty strings mean
// "no filter", matching how unset query-string fields parse.
type CatFilter struct {
	Search string // case-insensitive substring match on name
	Tag    string // exact match on tag
}

// Where builds the clause fragment and bound parameters shared by the
// count and data queries, so both are guaranteed to agree on which
// rows match. Values only ever travel as placeholders.
func (f CatFilter) Where() (string, []any) {
	var conds []string
	var args []any

	if f.Search != "" {
		conds = append(conds, "name LIKE ?")
		args = append(args, "%"+f.Search+"%")
	}
	if f.Tag != "" {
		conds = append(conds, "tag = ?")
		args = append(args, f.Tag)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
