package game

// Layouts are the built-in mazes, addressable by name wherever a maze file is accepted.
var Layouts = map[string]string{
	"tiny": `
%%%%%%%%
%P     %
% %%%% %
% %  % %
%   %%.%
%%%%%%%%
`,
	"open": `
%%%%%%%%%%%%
%P         %
%          %
%    %%%   %
%      %  .%
%%%%%%%%%%%%
`,
	"chase": `
%%%%%%%%%
%.  P  .%
%.%%%%%.%
%.  G  .%
%%%%%%%%%
`,
	"duel": `
%%%%%%%%%%%
%G.......G%
%.%%%.%%%.%
%....P....%
%%%%%%%%%%%
`,
}
