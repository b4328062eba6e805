// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package contentplan

// SectionOptions are the site sections a content plan item may belong to.
var SectionOptions = []string{
	"услуга",
	"специальность",
	"заболевание",
	"симптом",
	"блог",
}

// StatusOptions are the workflow statuses of a content plan item, in
// workflow order.
var StatusOptions = []string{
	"ТЗ в разработке",
	"ТЗ готово",
	"В работе",
	"Можно размещать",
	"Внести СЕО правки",
	"Отправлено на размещение",
	"Размещено",
}
