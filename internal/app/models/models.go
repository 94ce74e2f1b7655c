package models

func setIfPresent(cols map[string]interface{}, column string, value *string) {
	if value != nil {
		cols[column] = *value
	}
}

func applyString(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}
