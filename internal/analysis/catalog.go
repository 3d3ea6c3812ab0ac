package analysis

import "uxlens/internal/domain/entity"

// Template — заготовка UX-замечания.
type Template struct {
	Category       entity.Category
	Title          string
	Rationale      string
	Recommendation string
}

// templates — фиксированный каталог заготовок; синтезатор выбирает из
// него по индексу от ГПСЧ. Порядок менять нельзя: он входит в контракт
// детерминизма.
var templates = []Template{
	{
		Category:       entity.CategoryContrast,
		Title:          "Низкий контраст текста",
		Rationale:      "Текст сливается с фоном и плохо читается, особенно при ярком освещении или на дешёвых экранах.",
		Recommendation: "Поднимите контраст пары текст/фон минимум до 4.5:1 (WCAG AA).",
	},
	{
		Category:       entity.CategoryHierarchy,
		Title:          "Размытая визуальная иерархия",
		Rationale:      "Заголовки, подписи и основной текст почти не отличаются по весу, взгляду не за что зацепиться.",
		Recommendation: "Разведите уровни по размеру и насыщенности шрифта, оставьте один явный акцент на экран.",
	},
	{
		Category:       entity.CategorySpacing,
		Title:          "Недостаточные отступы между элементами",
		Rationale:      "Элементы стоят вплотную и воспринимаются как одно пятно, границы блоков не считываются.",
		Recommendation: "Добавьте воздуха: выровняйте отступы по сетке с шагом 8 px.",
	},
	{
		Category:       entity.CategoryTouchTarget,
		Title:          "Слишком маленькая область нажатия",
		Rationale:      "В эту цель сложно попасть пальцем, пользователи будут промахиваться и нажимать соседние элементы.",
		Recommendation: "Увеличьте кликабельную область минимум до 44x44 px, не обязательно увеличивая саму иконку.",
	},
	{
		Category:       entity.CategoryConsistency,
		Title:          "Непоследовательное оформление однотипных элементов",
		Rationale:      "Одинаковые по смыслу элементы выглядят по-разному, и пользователь не понимает, что из этого кнопка.",
		Recommendation: "Сведите однотипные элементы к одному стилю из дизайн-системы.",
	},
	{
		Category:       entity.CategoryFeedback,
		Title:          "Нет видимого отклика на действие",
		Rationale:      "После нажатия ничего не меняется, пользователь не уверен, что действие принято, и жмёт повторно.",
		Recommendation: "Добавьте состояние нажатия и индикатор загрузки для операций дольше 300 мс.",
	},
	{
		Category:       entity.CategoryClarity,
		Title:          "Неочевидное назначение элемента",
		Rationale:      "Иконка без подписи допускает несколько толкований, смысл действия приходится угадывать.",
		Recommendation: "Подпишите элемент или добавьте подсказку с глаголом действия.",
	},
	{
		Category:       entity.CategoryAccessibility,
		Title:          "Экран не адаптирован для скринридеров",
		Rationale:      "Смысловые элементы выглядят как чистая графика, незрячий пользователь пропустит их полностью.",
		Recommendation: "Добавьте текстовые альтернативы и проверьте порядок обхода фокусом.",
	},
}
