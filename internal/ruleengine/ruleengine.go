// Package ruleengine renders the amendment sentence ("…를 …로 한다.") for a
// single (original, replacement, particle) triple, per spec.md §4.3. It is a
// direct table-driven port of the source system's josa-agreement rules: the
// particle attached to the original word must be rewritten to agree with the
// replacement word's batchim, and the sentence wording differs depending on
// whether that rewrite changes the particle's surface form at all.
package ruleengine

import (
	"fmt"

	"github.com/pyhub-apps/gaejeong-cli/internal/hangul"
)

// Apply renders the amendment sentence for replacing orig with replaced,
// where particle is the josa (particle) that followed orig in the source
// text, or "" if orig appeared bare (Rule 0). particle must be one of the
// strings in classify.Particles, or "" — any other value falls through to
// defaultSentence, matching the source system's unconditional final
// fallback: 을/를 follows orig's batchim and the target is always 로.
func Apply(orig, replaced, particle string) string {
	if orig == replaced {
		return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
	}

	origFinal := hangul.HasFinal(orig)
	repFinal := hangul.HasFinal(replaced)
	repRieul := hangul.HasRieulFinal(replaced)

	switch particle {
	case "":
		return rule0(orig, replaced, origFinal, repFinal, repRieul)
	case "을":
		return rule1(orig, replaced, repFinal, repRieul)
	case "를":
		return rule2(orig, replaced, repFinal)
	case "과":
		return rule3(orig, replaced, repFinal, repRieul)
	case "와":
		return rule4(orig, replaced, repFinal)
	case "이":
		return rule5(orig, replaced, repFinal, repRieul)
	case "가":
		return rule6(orig, replaced, repFinal)
	case "이나":
		return rule7(orig, replaced, repFinal, repRieul)
	case "나":
		return rule8(orig, replaced, repFinal)
	case "으로":
		return rule9(orig, replaced, repFinal, repRieul)
	case "로":
		return rule10(orig, replaced, origFinal, repFinal, repRieul)
	case "는":
		return rule11(orig, replaced, repFinal)
	case "은":
		return rule12(orig, replaced, repFinal, repRieul)
	case "란":
		return rule13(orig, replaced, repFinal)
	case "이란":
		return rule14(orig, replaced, repFinal, repRieul)
	case "로서", "로써":
		return rule15(orig, replaced, particle, origFinal, repFinal, repRieul)
	case "으로서", "으로써":
		return rule16(orig, replaced, particle, repFinal, repRieul)
	case "라":
		return rule17(orig, replaced, repFinal)
	case "이라":
		return rule18(orig, replaced, repFinal, repRieul)
	default:
		return defaultSentence(orig, replaced, origFinal)
	}
}

func defaultSentence(orig, replaced string, origFinal bool) string {
	if origFinal {
		return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
}

// rule0 handles the no-particle case (orig appeared bare in the text).
func rule0(orig, replaced string, origFinal, repFinal, repRieul bool) string {
	if !origFinal {
		if !repFinal || repRieul {
			return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
		}
		return fmt.Sprintf("%q를 %q으로 한다.", orig, replaced)
	}
	if !repFinal || repRieul {
		return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
	}
	return fmt.Sprintf("%q을 %q으로 한다.", orig, replaced)
}

// rule1 handles josa == "을".
func rule1(orig, replaced string, repFinal, repRieul bool) string {
	if repFinal {
		if repRieul {
			return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
		}
		return fmt.Sprintf("%q을 %q으로 한다.", orig, replaced)
	}
	return fmt.Sprintf("%q을 %q로 한다.", orig+"을", replaced+"를")
}

// rule2 handles josa == "를".
func rule2(orig, replaced string, repFinal bool) string {
	if repFinal {
		return fmt.Sprintf("%q을 %q로 한다.", orig+"를", replaced+"을")
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
}

// rule3 handles josa == "과".
func rule3(orig, replaced string, repFinal, repRieul bool) string {
	if repFinal {
		if repRieul {
			return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
		}
		return fmt.Sprintf("%q을 %q으로 한다.", orig, replaced)
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig+"과", replaced+"와")
}

// rule4 handles josa == "와".
func rule4(orig, replaced string, repFinal bool) string {
	if repFinal {
		return fmt.Sprintf("%q를 %q로 한다.", orig+"와", replaced+"과")
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
}

// rule5 handles josa == "이".
func rule5(orig, replaced string, repFinal, repRieul bool) string {
	if repFinal {
		if repRieul {
			return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
		}
		return fmt.Sprintf("%q을 %q으로 한다.", orig, replaced)
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig+"이", replaced+"가")
}

// rule6 handles josa == "가".
func rule6(orig, replaced string, repFinal bool) string {
	if repFinal {
		return fmt.Sprintf("%q를 %q로 한다.", orig+"가", replaced+"이")
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
}

// rule7 handles josa == "이나".
func rule7(orig, replaced string, repFinal, repRieul bool) string {
	if repFinal {
		if repRieul {
			return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
		}
		return fmt.Sprintf("%q을 %q으로 한다.", orig, replaced)
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig+"이나", replaced+"나")
}

// rule8 handles josa == "나".
func rule8(orig, replaced string, repFinal bool) string {
	if repFinal {
		return fmt.Sprintf("%q를 %q로 한다.", orig+"나", replaced+"이나")
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
}

// rule9 handles josa == "으로".
func rule9(orig, replaced string, repFinal, repRieul bool) string {
	if repFinal {
		if repRieul {
			return fmt.Sprintf("%q를 %q로 한다.", orig+"으로", replaced+"로")
		}
		return fmt.Sprintf("%q을 %q으로 한다.", orig, replaced)
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig+"으로", replaced+"로")
}

// rule10 handles josa == "로".
func rule10(orig, replaced string, origFinal, repFinal, repRieul bool) string {
	if origFinal {
		if repFinal {
			if repRieul {
				return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
			}
			return fmt.Sprintf("%q를 %q로 한다.", orig+"로", replaced+"으로")
		}
		return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
	}
	if repFinal {
		if repRieul {
			return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
		}
		return fmt.Sprintf("%q를 %q로 한다.", orig+"로", replaced+"으로")
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
}

// rule11 handles josa == "는".
func rule11(orig, replaced string, repFinal bool) string {
	if repFinal {
		return fmt.Sprintf("%q을 %q으로 한다.", orig+"는", replaced+"은")
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
}

// rule12 handles josa == "은".
func rule12(orig, replaced string, repFinal, repRieul bool) string {
	if repFinal {
		if repRieul {
			return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
		}
		return fmt.Sprintf("%q을 %q으로 한다.", orig, replaced)
	}
	return fmt.Sprintf("%q을 %q으로 한다.", orig+"은", replaced+"는")
}

// rule13 handles josa == "란".
func rule13(orig, replaced string, repFinal bool) string {
	if repFinal {
		return fmt.Sprintf("%q을 %q으로 한다.", orig+"란", replaced+"이란")
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
}

// rule14 handles josa == "이란".
func rule14(orig, replaced string, repFinal, repRieul bool) string {
	if repFinal {
		if repRieul {
			return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
		}
		return fmt.Sprintf("%q을 %q으로 한다.", orig, replaced)
	}
	return fmt.Sprintf("%q을 %q으로 한다.", orig+"이란", replaced+"란")
}

// rule15 handles josa == "로서" or "로써".
func rule15(orig, replaced, particle string, origFinal, repFinal, repRieul bool) string {
	if origFinal {
		if repFinal {
			if repRieul {
				return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
			}
			return fmt.Sprintf("%q를 %q로 한다.", orig+particle, replaced+"으"+particle)
		}
		return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
	}
	if repFinal {
		if repRieul {
			return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
		}
		return fmt.Sprintf("%q를 %q로 한다.", orig+particle, replaced+"으"+particle)
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
}

// rule16 handles josa == "으로서" or "으로써". The source strips the leading
// "으로" from the particle (josa[2:] over its two-rune prefix), leaving just
// "서" or "써", and attaches it after replaced's "로".
func rule16(orig, replaced, particle string, repFinal, repRieul bool) string {
	tail := string([]rune(particle)[2:])
	if repFinal {
		if repRieul {
			return fmt.Sprintf("%q를 %q로 한다.", orig+particle, replaced+"로"+tail)
		}
		return fmt.Sprintf("%q을 %q으로 한다.", orig, replaced)
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig+particle, replaced+"로"+tail)
}

// rule17 handles josa == "라".
func rule17(orig, replaced string, repFinal bool) string {
	if repFinal {
		return fmt.Sprintf("%q를 %q로 한다.", orig+"라", replaced+"이라")
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig, replaced)
}

// rule18 handles josa == "이라".
func rule18(orig, replaced string, repFinal, repRieul bool) string {
	if repFinal {
		if repRieul {
			return fmt.Sprintf("%q을 %q로 한다.", orig, replaced)
		}
		return fmt.Sprintf("%q을 %q으로 한다.", orig, replaced)
	}
	return fmt.Sprintf("%q를 %q로 한다.", orig+"이라", replaced+"라")
}
